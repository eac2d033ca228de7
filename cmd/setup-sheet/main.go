// Command setup-sheet creates the sales spreadsheet with its header row and
// prints the address it must be shared with. Run it once before the bot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/banarsibot-api/infrastructure/database/gsheets"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/domain"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	name := flag.String("name", cfg.Spreadsheet.Name, "spreadsheet title")
	flag.Parse()

	ctx := context.Background()

	conn, err := gsheets.NewConnection(ctx, cfg.Spreadsheet)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to Google Sheets")
	}

	created, err := conn.Create(ctx, *name, domain.SaleSheetHeader)
	if err != nil {
		logrus.WithError(err).Fatal("could not create spreadsheet")
	}

	email, err := gsheets.ServiceAccountEmail(cfg.Spreadsheet.CredentialsFile)
	if err != nil {
		logrus.WithError(err).Warn("could not read service account e-mail")
	}

	fmt.Fprintf(os.Stdout, "Sheet created: %s\n", created.SpreadsheetUrl)
	fmt.Fprintf(os.Stdout, "Spreadsheet ID: %s (set SPREADSHEET_ID to skip the lookup by name)\n", created.SpreadsheetId)
	if email != "" {
		fmt.Fprintf(os.Stdout, "Share it with the service account: %s\n", email)
	}
}
