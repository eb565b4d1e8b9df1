package entity

import "time"

// Notice aviso publicado por la casa matriz (HQ) hacia las tiendas.
type Notice struct {
	ID          string
	Title       string
	Body        string
	PublishedAt time.Time
	CreatedAt   time.Time
}
