// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package store

const (
	upsertWine = `
		INSERT OR REPLACE INTO wines (
			id,
			name,
			price,
			production_date,
			origin,
			alcohol_degree,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	nextProvisionalID = `
		SELECT COALESCE(MIN(id), 0) FROM wines;`

	updateWineStatus = `
		UPDATE wines SET status = ? WHERE id = ?;`

	deleteWine = `
		DELETE FROM wines WHERE id = ?;`

	getWineByID = `
		SELECT id, name, price, production_date, origin, alcohol_degree, status
		FROM wines
		WHERE id = ?;`

	getVisibleWines = `
		SELECT id, name, price, production_date, origin, alcohol_degree, status
		FROM wines
		WHERE status != 'PENDING_DELETE'
		ORDER BY id;`

	getPendingWines = `
		SELECT id, name, price, production_date, origin, alcohol_degree, status
		FROM wines
		WHERE status != 'SYNCED'
		ORDER BY id;`

	clearSyncedWines = `
		DELETE FROM wines WHERE status = 'SYNCED';`
)
