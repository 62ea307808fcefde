package db_models

import "github.com/google/uuid"

// MasterOption is a reusable attribute value shared across products, e.g. a
// RAM size or a company brand. Unique per (type, name).
type MasterOption struct {
	BaseModel
	Type string `gorm:"index:idx_master_type_name,unique;not null" json:"type"`
	Name string `gorm:"index:idx_master_type_name,unique;not null" json:"name"`

	SubOptions []SubMasterOption `gorm:"foreignKey:MasterID" json:"-"`
}

// SubMasterOption nests under a master option, optionally under another
// sub option of the same master (e.g. a sub-brand under a company master).
// Unique per (master, parent, name).
type SubMasterOption struct {
	BaseModel
	MasterID uuid.UUID  `gorm:"index:idx_submaster_key,unique;not null" json:"master_id"`
	ParentID *uuid.UUID `gorm:"index:idx_submaster_key,unique" json:"parent_id,omitempty"`
	Name     string     `gorm:"index:idx_submaster_key,unique;not null" json:"name"`

	Master MasterOption `gorm:"foreignKey:MasterID" json:"-"`
}
