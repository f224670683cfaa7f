package mediastore

// Object загруженный файл
type Object struct {
	PublicID string
	URL      string // https ссылка на файл
	Bytes    int
	Format   string
}
