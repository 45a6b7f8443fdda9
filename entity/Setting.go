package entity

// Setting is one key/value platform configuration row.
type Setting struct {
	Model
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `json:"value"`
}
