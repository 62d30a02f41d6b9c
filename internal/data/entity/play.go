package entity

type Play struct {
	Base
	Title       string `db:"title"`
	Description string `db:"description"`
}
