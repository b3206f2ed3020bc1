package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`

	// set only for seeded admin identities; empty for everyone else
	PasswordHash string `json:"-"`

	Role      Role              `gorm:"type:text" json:"role"`
	PhotoURL  string            `json:"photoURL"`
	OtherInfo datatypes.JSONMap `gorm:"type:jsonb" json:"otherInfo,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type TrainerApplication struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	FullName      string            `json:"fullName"`
	Email         string            `gorm:"index;not null" json:"email"`
	Age           int               `json:"age"`
	ProfileImage  string            `json:"profileImage"`
	Skills        datatypes.JSON    `gorm:"type:jsonb" json:"skills"` // array of strings
	AvailableDays datatypes.JSON    `gorm:"type:jsonb" json:"availableDays"`
	AvailableTime string            `json:"availableTime"`
	Status        ApplicationStatus `gorm:"type:text;index" json:"status"`
	Feedback      string            `gorm:"type:text" json:"feedback"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type ForumPost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	AuthorName  string    `json:"authorName"`
	AuthorRole  string    `json:"authorRole"`
	UpVotes     int64     `gorm:"not null;default:0" json:"upVotes"`
	DownVotes   int64     `gorm:"not null;default:0" json:"downVotes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Class struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"index" json:"title"`
	CoverImg    string         `json:"coverImg"`
	Description string         `gorm:"type:text" json:"description"`
	Trainers    datatypes.JSON `gorm:"type:jsonb" json:"trainers"` // trainer refs (name/email/photo)
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserEmail   string    `gorm:"index;not null" json:"userEmail"`
	TrainerName string    `json:"trainerName"`
	SlotName    string    `json:"slotName"`
	PackageName string    `json:"packageName"`
	Price       float64   `json:"price"`
	Paid        bool      `gorm:"default:true" json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewsletterSubscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"index" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"index" json:"userEmail"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Rating    int       `json:"rating"`
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

type Slot struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	TrainerEmail string    `gorm:"index;not null" json:"trainerEmail"`
	SlotName     string    `gorm:"index" json:"slotName"`
	Day          string    `json:"day"`
	Time         string    `json:"time"`
	ClassName    string    `json:"className"`
	CreatedAt    time.Time `json:"created_at"`
}
