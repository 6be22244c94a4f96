package client

// Storage - долговременное хранилище клиента. Между запусками сохраняется
// только флаг входа.
type Storage interface {
	GetFlag(key string) (string, error)
	SetFlag(key, value string) error
	DeleteFlag(key string) error
	Close() error
}
