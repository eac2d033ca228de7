package gsheets

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vfg2006/banarsibot-api/internal/config"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

var ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

// Scopes requested for the service account: sheet read/write and Drive
// metadata to look a spreadsheet up by name.
var Scopes = []string{sheets.SpreadsheetsScope, drive.DriveMetadataReadonlyScope}

// Conn is the spreadsheet handle the repositories work against. Rows are
// always read from and appended to the first sheet of the spreadsheet.
type Conn interface {
	AppendRow(ctx context.Context, values []any) error
	ReadAll(ctx context.Context) ([][]any, error)
	Ping(ctx context.Context) error
}

type Connection struct {
	sheets  *sheets.Service
	drive   *drive.Service
	name    string
	timeout time.Duration

	mu            sync.Mutex
	spreadsheetID string
	sheetTitle    string
}

// NewConnection authenticates with the service-account credentials file.
func NewConnection(ctx context.Context, cfg config.Spreadsheet) (*Connection, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, errors.Wrapf(err, "gsheets: read credentials %s", cfg.CredentialsFile)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, errors.Wrap(err, "gsheets: parse credentials")
	}

	return NewConnectionWithOptions(ctx, cfg, option.WithCredentials(creds))
}

func NewConnectionWithOptions(ctx context.Context, cfg config.Spreadsheet, opts ...option.ClientOption) (*Connection, error) {
	sheetsService, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "gsheets: sheets service")
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "gsheets: drive service")
	}

	return &Connection{
		sheets:        sheetsService,
		drive:         driveService,
		name:          cfg.Name,
		timeout:       cfg.Timeout,
		spreadsheetID: cfg.ID,
	}, nil
}

// ServiceAccountEmail returns the client e-mail of a credentials file, the
// identity the spreadsheet must be shared with.
func ServiceAccountEmail(credentialsFile string) (string, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return "", errors.Wrapf(err, "gsheets: read credentials %s", credentialsFile)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, Scopes...)
	if err != nil {
		return "", errors.Wrap(err, "gsheets: parse credentials")
	}

	return jwtConfig.Email, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	_, _, err := c.target(ctx)
	return err
}

func (c *Connection) AppendRow(ctx context.Context, values []any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	id, title, err := c.target(ctx)
	if err != nil {
		return err
	}

	_, err = c.sheets.Spreadsheets.Values.
		Append(id, quoteSheetTitle(title), &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrap(err, "gsheets: append row")
	}

	return nil
}

func (c *Connection) ReadAll(ctx context.Context) ([][]any, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	id, title, err := c.target(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.sheets.Spreadsheets.Values.Get(id, quoteSheetTitle(title)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "gsheets: read values")
	}

	rows := make([][]any, 0, len(resp.Values))
	for _, row := range resp.Values {
		rows = append(rows, row)
	}

	return rows, nil
}

// Create makes a new spreadsheet, writes header to its first sheet and points
// the connection at it.
func (c *Connection) Create(ctx context.Context, name string, header []string) (*sheets.Spreadsheet, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	created, err := c.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: name},
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "gsheets: create spreadsheet %q", name)
	}

	c.mu.Lock()
	c.name = name
	c.spreadsheetID = created.SpreadsheetId
	c.sheetTitle = firstSheetTitle(created)
	c.mu.Unlock()

	row := make([]any, 0, len(header))
	for _, h := range header {
		row = append(row, h)
	}
	if err := c.AppendRow(ctx, row); err != nil {
		return created, err
	}

	return created, nil
}

// target resolves and memoizes the spreadsheet ID and first sheet title.
func (c *Connection) target(ctx context.Context) (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.spreadsheetID != "" && c.sheetTitle != "" {
		return c.spreadsheetID, c.sheetTitle, nil
	}

	if c.spreadsheetID == "" {
		id, err := c.findByName(ctx)
		if err != nil {
			return "", "", err
		}
		c.spreadsheetID = id
	}

	spreadsheet, err := c.sheets.Spreadsheets.Get(c.spreadsheetID).
		Fields("spreadsheetId", "sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", errors.Wrapf(err, "gsheets: open spreadsheet %s", c.spreadsheetID)
	}

	title := firstSheetTitle(spreadsheet)
	if title == "" {
		return "", "", errors.Errorf("gsheets: spreadsheet %s has no sheets", c.spreadsheetID)
	}
	c.sheetTitle = title

	return c.spreadsheetID, c.sheetTitle, nil
}

func (c *Connection) findByName(ctx context.Context) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQueryLiteral(c.name), spreadsheetMimeType)

	list, err := c.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.Wrapf(err, "gsheets: search spreadsheet %q", c.name)
	}

	if len(list.Files) == 0 {
		return "", errors.Wrapf(ErrSpreadsheetNotFound, "gsheets: %q", c.name)
	}

	return list.Files[0].Id, nil
}

func (c *Connection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func firstSheetTitle(spreadsheet *sheets.Spreadsheet) string {
	if spreadsheet == nil || len(spreadsheet.Sheets) == 0 || spreadsheet.Sheets[0].Properties == nil {
		return ""
	}
	return spreadsheet.Sheets[0].Properties.Title
}

func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// escapeQueryLiteral escapes a value for a single-quoted Drive query string.
func escapeQueryLiteral(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, "'", `\'`)
}
