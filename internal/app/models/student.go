package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// StudentProfile holds the editable student fields. Nil means the field was never set.
type StudentProfile struct {
	Name           *string  `json:"name,omitempty" bson:"name,omitempty" form:"name" example:"A. Sharma"`
	Email          *string  `json:"email,omitempty" bson:"email,omitempty" form:"email" example:"a.sharma@univ.edu"`
	Phone          *string  `json:"phone,omitempty" bson:"phone,omitempty" form:"phone" example:"9876543210"`
	RegistrationNo *string  `json:"registrationNo,omitempty" bson:"registrationNo,omitempty" form:"registrationNo" example:"21CS123"`
	DOB            *string  `json:"dob,omitempty" bson:"dob,omitempty" form:"dob" example:"23-05-2003"` // dd-mm-yyyy
	Course         *string  `json:"course,omitempty" bson:"course,omitempty" form:"course" example:"B.Tech CSE"`
	Semester       *int     `json:"semester,omitempty" bson:"semester,omitempty" form:"semester" example:"6"`
	Address        *string  `json:"address,omitempty" bson:"address,omitempty" form:"address"`
	State          *string  `json:"state,omitempty" bson:"state,omitempty" form:"state" example:"Karnataka"`
	CGPA           *float64 `json:"cgpa,omitempty" bson:"cgpa,omitempty" form:"cgpa" example:"8.4"`
	ActiveBacklogs *int     `json:"activeBacklogs,omitempty" bson:"activeBacklogs,omitempty" form:"activeBacklogs" example:"0"`
	Certifications *int     `json:"certifications,omitempty" bson:"certifications,omitempty" form:"certifications" example:"2"`
	Projects       *int     `json:"projects,omitempty" bson:"projects,omitempty" form:"projects" example:"3"`
	Internships    *int     `json:"internships,omitempty" bson:"internships,omitempty" form:"internships" example:"1"`
	ResearchPapers *int     `json:"researchPapers,omitempty" bson:"researchPapers,omitempty" form:"researchPapers" example:"0"`
}

// Student is a document in the 'students' collection.
// File references are always rendered, as null when no file was uploaded.
type Student struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty" form:"-" swaggertype:"string" example:"665f1c2e8b3e4a1d2c3b4a59"`
	StudentProfile `bson:",inline"`
	ResumeFileID   *primitive.ObjectID `json:"resumeFileId" bson:"resumeFileId" form:"-" swaggertype:"string"`
	PhotoFileID    *primitive.ObjectID `json:"photoFileId" bson:"photoFileId" form:"-" swaggertype:"string"`
}
