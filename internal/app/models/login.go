package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserType names the credential table a login matched
type UserType string

const (
	UserTypeFaculty UserType = "faculty"
	UserTypeStudent UserType = "student"
	UserTypeCompany UserType = "company"
)

// FacultyLogin is a row of 'facultylogins'. Passwords are stored as given.
type FacultyLogin struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Uname    string             `json:"uname" bson:"uname"`
	Password string             `json:"-" bson:"password"`
}

// StudentLogin is a row of 'studentlogins', tied to a Student by registrationNo
type StudentLogin struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name,omitempty" bson:"name,omitempty"`
	Uname          string             `json:"uname" bson:"uname"`
	Password       string             `json:"-" bson:"password"`
	RegistrationNo string             `json:"registrationNo,omitempty" bson:"registrationNo,omitempty"`
}

// CompanyLogin is a row of 'companylogins'
type CompanyLogin struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Uname    string             `json:"uname" bson:"uname"`
	Password string             `json:"-" bson:"password"`
}
