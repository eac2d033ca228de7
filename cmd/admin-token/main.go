// Command admin-token mints a bearer token for the /v1 admin API.
package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/internal/usecases/authenticating"
)

func main() {
	subject := flag.String("sub", "owner", "token subject")
	ttl := flag.Duration("ttl", authenticating.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).GenerateToken(*subject, domain.RoleAdmin, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("could not generate token")
	}

	fmt.Println(token)
}
