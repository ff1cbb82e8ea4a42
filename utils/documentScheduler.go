package utils

import (
	"academy/config"
	"academy/database"
	"academy/models"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

func logReaper(message string) {
	log.Println("[DOCUMENT-REAPER]", message)
}

// reapStaleDocuments removes uploaded documents older than the
// retention window whose owner never completed an enrollment form.
// Uploads are not rolled back when a submission fails after them, so
// this is where the orphans go.
func reapStaleDocuments() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.DocumentRetentionDays)

	var docs []models.EnrollmentDocument
	err := db.Where(
		"is_deleted = ? AND created_at < ? AND user_id NOT IN (?)",
		false, cutoff,
		db.Model(&models.EnrollmentForm{}).Select("user_id").Where("completed = ? AND is_deleted = ?", true, false),
	).Find(&docs).Error
	if err != nil {
		logReaper("Failed to query stale documents: " + err.Error())
		return
	}

	for _, doc := range docs {
		if doc.FilePath != "" {
			if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
				logReaper("Failed to remove file " + doc.FilePath + ": " + err.Error())
				continue
			}
		}
		db.Model(&models.EnrollmentDocument{}).Where("id = ?", doc.ID).Update("is_deleted", true)
	}

	if len(docs) > 0 {
		logReaper("Reaped stale enrollment documents")
	}
}

// StartDocumentReaper runs the stale-document cleanup daily.
func StartDocumentReaper(c *cron.Cron) {
	c.AddFunc("30 2 * * *", func() {
		reapStaleDocuments()
	})
	logReaper("Document reaper started - runs daily at 02:30")
}

// InitializeSchedulers initializes all background schedulers
func InitializeSchedulers() *cron.Cron {
	c := cron.New()

	StartDocumentReaper(c)

	c.Start()

	logReaper("All schedulers initialized successfully")
	return c
}
