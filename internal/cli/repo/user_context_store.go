package repo

// UserContextStore хранит текущего пользователя CLI между запусками.
type UserContextStore interface {
	SaveUserID(userID string) error
	LoadUserID() (string, error)
}
