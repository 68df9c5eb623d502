package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gestao_tarefas_backend/internals/configs"
	database "gestao_tarefas_backend/internals/databases"
	"gestao_tarefas_backend/internals/seeds"
)

func newRootCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Popula o banco com turmas, alunos, disciplinas, professores e tarefas de exemplo",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs.LoadEnv()
			cfg := configs.Load()

			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}

			log.Println("🌱 Sementes do sistema acadêmico")
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			sum, err := seeds.RunAllSeeds(ctx, db, force, time.Now().UTC())
			if errors.Is(err, seeds.ErrDatabaseNotEmpty) {
				log.Printf("⚠️ %v", err)
				return nil
			}
			if err != nil {
				return err
			}

			log.Printf("✅ Seeds concluídos: %d turmas, %d alunos, %d disciplinas, %d professores, %d tarefas",
				sum.Turmas, sum.Alunos, sum.Disciplinas, sum.Professores, sum.Tarefas)
			log.Println("🔑 Login de teste: ana.silva@email.com / senha123")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "limpa as tabelas antes de recriar os dados")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
