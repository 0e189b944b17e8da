package store

const (
	listWines = `SELECT id, name, price, production_date, origin, alcohol_degree
		FROM wines
		ORDER BY id;`

	getWine = `SELECT id, name, price, production_date, origin, alcohol_degree
		FROM wines
		WHERE id = $1;`

	createWine = `INSERT INTO wines (name, price, production_date, origin, alcohol_degree)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, price, production_date, origin, alcohol_degree;`

	updateWine = `UPDATE wines
		SET name = $2, price = $3, production_date = $4, origin = $5, alcohol_degree = $6
		WHERE id = $1
		RETURNING id, name, price, production_date, origin, alcohol_degree;`

	removeWine = `DELETE FROM wines
		WHERE id = $1;`
)
