package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. A user's role is fixed at registration.
const (
	RoleClient     = "CLIENT"
	RoleContractor = "CONTRACTOR"
	RoleAdmin      = "ADMIN"
	RoleOfficer    = "OFFICER"
)

// Account lifecycle states. Only ACTIVE users can authenticate.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusRemoved  = "REMOVED"
)

// Job workflow states.
const (
	JobUnassigned = "UNASSIGNED"
	JobAssigned   = "ASSIGNED"
	JobInProgress = "IN_PROGRESS"
	JobPending    = "PENDING"
	JobCompleted  = "COMPLETED"
	JobCancelled  = "CANCELLED"
)

// Job categories.
const (
	CategoryIT          = "IT"
	CategoryPlumbing    = "PLUMBING"
	CategoryElectrical  = "ELECTRICAL"
	CategoryCarpentry   = "CARPENTRY"
	CategoryCleaning    = "CLEANING"
	CategoryLandscaping = "LANDSCAPING"
	CategoryOther       = "OTHER"
)

// ValidRole reports whether role is one of the registerable roles.
func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleContractor, RoleAdmin, RoleOfficer:
		return true
	}
	return false
}

// ValidCategory reports whether category is in the fixed set.
func ValidCategory(category string) bool {
	switch category {
	case CategoryIT, CategoryPlumbing, CategoryElectrical, CategoryCarpentry,
		CategoryCleaning, CategoryLandscaping, CategoryOther:
		return true
	}
	return false
}

// User represents the users table.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:128;index" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;not null" json:"role"`
	Status    string         `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Extension is the role-specific variant record, created with the
	// user and cascade-deleted with it.
	Extension *Extension `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"extension,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// HasRole checks the user's role.
func (u *User) HasRole(role string) bool {
	return u.Role == role
}

// Extension is the role-keyed variant record backing the single-table
// polymorphism of the original design. Role is the discriminator and
// mirrors the owning user's role; only the relations matching the
// discriminator are ever populated:
//
//	CLIENT     -> PostedJobs
//	CONTRACTOR -> AssignedJobs
//	ADMIN      -> Roster
//	OFFICER    -> no extra state
type Extension struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Role   string `gorm:"size:20;not null" json:"role"`

	PostedJobs   []Job   `gorm:"foreignKey:PosterID" json:"posted_jobs,omitempty"`
	AssignedJobs []Job   `gorm:"foreignKey:ContractorID" json:"assigned_jobs,omitempty"`
	Roster       []*User `gorm:"many2many:admin_roster;joinForeignKey:ExtensionID;joinReferences:ContractorUserID" json:"roster,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Extension) TableName() string {
	return "user_extensions"
}

// NewExtension builds the variant record matching a role.
func NewExtension(role string) *Extension {
	return &Extension{Role: role}
}

// Job represents the jobs table. A job is owned by its poster's client
// extension; the contractor link is a reference, not ownership.
type Job struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:256;index;not null" json:"title"`
	Description  string         `gorm:"size:512;not null" json:"description"`
	Category     string         `gorm:"size:30;not null" json:"category"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Status       string         `gorm:"size:20;not null;default:'UNASSIGNED'" json:"status"`
	PosterID     uint           `gorm:"index;not null" json:"poster_id"`
	ContractorID *uint          `gorm:"index" json:"contractor_id"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Poster     *Extension `gorm:"foreignKey:PosterID" json:"-"`
	Contractor *Extension `gorm:"foreignKey:ContractorID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

// Terminal reports whether the job status has no outgoing transitions.
func (j *Job) Terminal() bool {
	return j.Status == JobCompleted || j.Status == JobCancelled
}

// ProfileResponse is the self-view DTO: the caller's own record minus
// password and id.
type ProfileResponse struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	Extension *Extension `json:"extension,omitempty"`
}

// ToProfile builds the self-view DTO.
func (u *User) ToProfile() *ProfileResponse {
	return &ProfileResponse{
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		Extension: u.Extension,
	}
}

// RedactedResponse is what non-admin callers see of other users.
type RedactedResponse struct {
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToRedacted builds the redacted cross-user DTO.
func (u *User) ToRedacted() *RedactedResponse {
	return &RedactedResponse{
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Extension{},
		&Job{},
	)
}
