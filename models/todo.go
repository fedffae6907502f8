package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Todo is a to-do item document stored in the "Todos" collection.
// Every todo belongs to exactly one user via OwnerID; all mutations are
// scoped to that owner.
type Todo struct {
	// ID is the internal unique identifier assigned by the store.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Title is the short human-readable summary of the item. Required.
	Title string `bson:"title" json:"title"`

	// Description is an optional free-form elaboration of the item.
	Description *string `bson:"description,omitempty" json:"description,omitempty"`

	// DueDate is an optional client-formatted due date string.
	DueDate *string `bson:"dueDate,omitempty" json:"dueDate,omitempty"`

	// Priority is an optional integer priority; higher means more urgent.
	Priority *int32 `bson:"priority,omitempty" json:"priority,omitempty"`

	// CategoryID is an optional reference to a client-side category.
	CategoryID *string `bson:"categoryId,omitempty" json:"categoryId,omitempty"`

	// IsDone marks the item as completed.
	IsDone bool `bson:"isDone" json:"isDone"`

	// OwnerID references the User that created the item.
	OwnerID primitive.ObjectID `bson:"ownerId" json:"ownerId"`
}

// CollectionName returns the name of the collection
// associated with the Todo model.
func (t Todo) CollectionName() string {
	return "Todos"
}

// TodoPatch is a partial update of a Todo. Only non-nil fields are applied;
// the owner reference and identifier are never patchable.
type TodoPatch struct {
	Title       *string `bson:"title,omitempty"`
	Description *string `bson:"description,omitempty"`
	DueDate     *string `bson:"dueDate,omitempty"`
	Priority    *int32  `bson:"priority,omitempty"`
	CategoryID  *string `bson:"categoryId,omitempty"`
	IsDone      *bool   `bson:"isDone,omitempty"`
}
