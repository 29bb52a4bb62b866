package model

// Sequence is a named monotonic counter. Values handed out are never reused.
type Sequence struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null"`
}

// TableName pins the table name.
func (Sequence) TableName() string { return "id_sequences" }

// Models lists every table managed by AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&MenuWeek{},
		&Comment{},
		&Sequence{},
	}
}
