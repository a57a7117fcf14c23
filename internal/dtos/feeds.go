package dtos

import (
	"feeds.xdoubleu.com/internal/ics"
	"feeds.xdoubleu.com/internal/models"
	"feeds.xdoubleu.com/internal/rss"
)

type EventsResponseDto struct {
	UpdatedAt models.Timestamp `json:"updatedAt"`
	Count     int              `json:"count"`
	Events    []ics.Event      `json:"events"`
}

type NewsResponseDto struct {
	UpdatedAt models.Timestamp `json:"updatedAt"`
	Count     int              `json:"count"`
	Items     []rss.Item       `json:"items"`
}

type ErrorDto struct {
	Error string `json:"error"`
}
