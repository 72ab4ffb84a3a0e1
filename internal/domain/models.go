// Package domain defines the persistence models for addresses, categories,
// persons, posts and users. These types are mapped with GORM and form the core
// data layer of the CRUD backend.
//
// Deletes are physical: no model carries a gorm.DeletedAt column.
package domain

import "time"

// Address is a postal address that users may reference.
type Address struct {
	ID        uint      `gorm:"primaryKey"`
	Street    string    `gorm:"type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(100);not null;index:idx_addresses_city"`
	ZipCode   string    `gorm:"type:varchar(10);not null;index:idx_addresses_zip"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name for Address.
func (Address) TableName() string { return "addresses" }

// Category groups content under a unique name. Inactive categories are kept
// but can be filtered out by clients.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:ux_categories_name"`
	Description string `gorm:"type:varchar(500)"`
	// Active has no column default on purpose: GORM would replace an explicit
	// false with the default on insert.
	Active    bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "categories" }

// Person is keyed by its national identity card number (CIN), which the
// client supplies on creation and which never changes afterwards.
type Person struct {
	CIN         string    `gorm:"column:cin;type:varchar(20);primaryKey"`
	FirstName   string    `gorm:"type:varchar(50);not null"`
	LastName    string    `gorm:"type:varchar(50);not null;index:idx_persons_last_name"`
	DateOfBirth time.Time `gorm:"not null"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:ux_persons_phone"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_persons_email"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the database table name for Person.
func (Person) TableName() string { return "persons" }

// Post is an article written by exactly one user.
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"type:varchar(200);not null"`
	Content   string `gorm:"type:text;not null"`
	AuthorID  uint   `gorm:"not null;index:idx_posts_author"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name for Post.
func (Post) TableName() string { return "posts" }

// User owns an optional address and any number of posts.
//
// Ownership is enforced by the service layer: deleting a user deletes its
// posts and its address, and replacing Posts on update removes orphans.
// The database constraints below mirror that for direct SQL access.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Age       int    `gorm:"not null"`
	AddressID *uint  `gorm:"index:idx_users_address"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Address is the optional home address.
	Address *Address `gorm:"foreignKey:AddressID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	// Posts are the articles authored by this user. A nil slice on an
	// incoming entity means "leave posts untouched".
	Posts []Post `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// PostIDs returns the ids of the user's posts in their current order.
func (u *User) PostIDs() []uint {
	ids := make([]uint, 0, len(u.Posts))
	for _, p := range u.Posts {
		ids = append(ids, p.ID)
	}
	return ids
}
