package entity

// LanguageString is one UI translation entry (en/ar).
type LanguageString struct {
	Model
	Key   string `gorm:"index:idx_lang_key,unique;not null" json:"key"`
	Lang  string `gorm:"index:idx_lang_key,unique;size:2;not null" json:"lang"`
	Value string `json:"value"`
}
