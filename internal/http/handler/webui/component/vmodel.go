package component

type PageVModel struct {
	Title      string
	BaseURL    string
	Identity   string
	IsRootView bool
	Retention  string
	Assignees  []AssigneeItem
	Todos      []TodoItem
	Deleted    []DeletedItem
	Users      []UserItem
}

type AssigneeItem struct {
	Value string
	Label string
}

type TodoItem struct {
	ID          string
	OwnerID     string
	Owner       string
	Text        string
	Completed   bool
	Creator     string
	CreatedAt   string
	CompletedBy string
	CompletedAt string
}

type DeletedItem struct {
	TodoItem
	DeletedBy  string
	DeletedAt  string
	DeletedAgo string
}

type UserItem struct {
	Token     string
	Username  string
	Link      string
	CreatedAt string
}
