package models

// Task is one entry of the to-do list.
// The id is assigned by the store on insert and never reused.
type Task struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string `gorm:"column:title;not null" json:"title"`
	Completed bool   `gorm:"column:completed;default:false" json:"completed"`
}

// TableName keeps the table name the service has always used.
func (Task) TableName() string { return "tasks" }
