package tables

type Table struct {
	ID     int64 `gorm:"primaryKey"`
	Seats  int   `gorm:"not null;check:chk_tables_seats,seats > 0"`
	Active bool  `gorm:"not null"`
}

// Result is what mutating operations hand back to the boundary.
type Result struct {
	Message string
	Content *Table
}

type CreateTableInput struct {
	Seats  *int
	Active *bool
}
