// Command issue_token prints a signed bearer token for calling the API, e.g.
// an operator token for the admin routes:
//
//	go run ./cmd/issue_token -sub ops -roles admin -ttl 1h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/platform/config"
	"github.com/SscSPs/intl_pricing_service/internal/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	subject := flag.String("sub", "", "user ID to put in the token subject")
	roles := flag.String("roles", "", "comma separated roles, e.g. admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	issuer := flag.String("iss", "intl-pricing-service", "token issuer")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	token, err := utils.GenerateJWT(*subject, roleList, cfg.JWTSecret, *ttl, *issuer)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
