package entity

type TheatreHall struct {
	Base
	Name       string `db:"name"`
	// row_count in the table: ROWS is reserved in PostgreSQL
	Rows       int    `db:"row_count"`
	SeatsInRow int    `db:"seats_in_row"`
}

func (h *TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}
