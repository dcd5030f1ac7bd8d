package model

type Category struct {
	ID               uint   `gorm:"primarykey" json:"id"`
	Name             string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	ParentCategoryID *uint  `gorm:"index" json:"parent_category_id,omitempty"`

	// Relationships
	Parent   *Category  `gorm:"foreignKey:ParentCategoryID;constraint:OnDelete:SET NULL" json:"-"`
	Children []Category `gorm:"foreignKey:ParentCategoryID" json:"-"`
	Products []Product  `gorm:"many2many:product_categories;constraint:OnDelete:CASCADE" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// ProductCategory is the join table between products and categories.
// Registered via SetupJoinTable so both foreign keys cascade on delete.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey" json:"product_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}
