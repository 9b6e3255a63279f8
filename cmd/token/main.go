// Comando token emite um bearer token para as rotas administrativas do painel.
//
//	go run ./cmd/token -user ana -role 1 -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
)

func main() {
	user := flag.String("user", "", "nome do operador")
	role := flag.Int("role", middleware.RoleAdmin, "role do operador (1 admin, 2 supervisor)")
	ttl := flag.Duration("ttl", 24*time.Hour, "validade do token")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "informe -user")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg.Auth).GenerateToken(*user, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	fmt.Println(token)
}
