package database

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartKeepAlive agenda um ping periódico no pool. spec vazio ou "off" desliga.
// O main chama Stop no cron devolvido durante o shutdown.
func StartKeepAlive(db *gorm.DB, spec string) (*cron.Cron, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "off") {
		log.Println("[KEEPALIVE] desativado")
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			log.Printf("[KEEPALIVE] ping falhou: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[KEEPALIVE] agendado (%s)", spec)
	return c, nil
}
