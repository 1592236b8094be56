package handlers

import (
	"restaurant-booking-api/config"
	"restaurant-booking-api/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler carries the dependencies every domain operation needs. It is
// constructed once in main and handed to the route table.
type Handler struct {
	DB     *gorm.DB
	Images storage.ImageStore
	Cfg    *config.Config
	Log    *logrus.Logger
}

func New(db *gorm.DB, images storage.ImageStore, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{DB: db, Images: images, Cfg: cfg, Log: log}
}
