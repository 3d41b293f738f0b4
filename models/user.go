package models

type Role string

const (
	RoleMember     Role = "member"
	RoleEmployee   Role = "employee"
	RoleManager    Role = "manager"
	RoleDirector   Role = "director"
	RoleConsultant Role = "consultant"
	RoleLead       Role = "lead"
	RoleClient     Role = "client"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID    string `json:"id" bson:"_id" yaml:"id" validate:"required"`
	Name  string `json:"name" bson:"name" yaml:"name"`
	Email string `json:"email" bson:"email" yaml:"email"`
	Role  Role   `json:"role" bson:"role" yaml:"role"`
}
