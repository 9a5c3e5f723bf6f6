package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CompanyProfile holds the editable company fields
type CompanyProfile struct {
	CompanyName   *string  `json:"companyName,omitempty" bson:"companyName,omitempty" example:"Acme Corp"`
	POCName       *string  `json:"pocName,omitempty" bson:"pocName,omitempty" example:"R. Menon"`
	POCPhone      *string  `json:"pocPhone,omitempty" bson:"pocPhone,omitempty" example:"9123456780"`
	POCEmail      *string  `json:"pocEmail,omitempty" bson:"pocEmail,omitempty" example:"hr@acme.example"`
	MinCGPA       *float64 `json:"minCgpa,omitempty" bson:"minCgpa,omitempty" example:"7.5"`
	AvgPackageLPA *float64 `json:"avgPackageLpa,omitempty" bson:"avgPackageLpa,omitempty" example:"12.5"`
}

// Company is a document in the 'companies' collection
type Company struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty" swaggertype:"string" example:"665f1c2e8b3e4a1d2c3b4a60"`
	CompanyProfile `bson:",inline"`
}
