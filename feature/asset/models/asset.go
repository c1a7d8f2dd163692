package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fields are the user-supplied attributes of an asset record.
// They form the create payload and the set of keys a sparse update may touch.
type Fields struct {
	// EmployeeID identifies the owning employee. One employee may own many records.
	EmployeeID string `bson:"employee_id" json:"employee_id" validate:"required"`
	// AssetNames are the human-readable names of the items in this record.
	AssetNames []string `bson:"asset_names" json:"asset_names" validate:"required"`
	// AssetIDs are the physical identifiers of the items. They run parallel to
	// AssetNames but no positional correspondence is enforced.
	AssetIDs []string `bson:"asset_id" json:"asset_id" validate:"required"`
	// PurchaseDate is a calendar date in YYYY-MM-DD form.
	PurchaseDate *string `bson:"purchase_date" json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	SerialNumber *string `bson:"serial_number" json:"serial_number"`
	// Condition is a free-form status such as "Good" or "Fair".
	Condition *string `bson:"condition" json:"condition"`
}

// Asset is a stored asset record.
type Asset struct {
	// ID is assigned by the store on insert and never changes.
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Fields `bson:",inline"`
}

// Validate checks presence and format of the create payload.
func (f Fields) Validate() error {
	return validateStruct(f)
}

// ParseFields decodes a create payload. Unknown keys are ignored.
func ParseFields(body []byte) (Fields, error) {
	var f Fields
	if err := json.Unmarshal(body, &f); err != nil {
		return Fields{}, &ValidationError{Message: "request body must be a JSON asset"}
	}
	return f, nil
}
