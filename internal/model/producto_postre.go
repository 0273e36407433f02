package model

// ProductoPostre is one unordered link between a Producto and a Postre.
// The composite primary key guarantees a pair is stored at most once.
type ProductoPostre struct {
	ProductoID uint `gorm:"primaryKey;autoIncrement:false"`
	PostreID   uint `gorm:"primaryKey;autoIncrement:false;index"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
	Postre   *Postre   `gorm:"foreignKey:PostreID;constraint:OnDelete:CASCADE"`
}

func (ProductoPostre) TableName() string { return "productos_postres" }
