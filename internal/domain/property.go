package domain

import "time"

// PDFSlotCount is the number of discrete document columns on a property row.
// Brochures fill from slot 0, floorplans occupy slots 2-4, the EPC slot 5.
const PDFSlotCount = 10

type Property struct {
	ID         int64
	AltoID     string // upstream natural key
	BranchID   string
	Name       string
	Alias      string
	Address    string // display address, no postcode
	CountryID  int64
	StateID    int64
	CityID     int64
	Postcode   string
	SmallDesc  string
	FullDesc   string
	Price      int64
	PriceText  string
	CurrencyID int64
	Bedrooms   int
	Bathrooms  float64
	Rooms      int
	Latitude   string
	Longitude  string
	Ref        string
	AgentID    int64
	Published  int
	TypeID     int64
	CategoryID int64
	CompanyID  int64
	SquareFeet float64
	LotSize    float64
	BuiltOn    int
	IsSold     int // 0 = current, 1 = concluded, 3 = agreed/under offer
	StatusNote string
	PDFSlots   [PDFSlotCount]string
	Created    time.Time
	Modified   time.Time
}

type Photo struct {
	ID          int64  `db:"id"`
	PropertyID  int64  `db:"property_id"`
	Image       string `db:"image"` // filename only, relative to the property directory
	Description string `db:"description"`
	Ordering    int    `db:"ordering"`
	IsDefault   bool   `db:"is_default"`
}

type Company struct {
	ID        int64
	BranchID  string // upstream natural key
	Name      string
	Alias     string
	Email     string
	Phone     string
	Fax       string
	Address   string
	CityID    int64
	CountryID int64
	Website   string
	Postcode  string
}
