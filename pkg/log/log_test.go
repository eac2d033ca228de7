package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_DevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	l := &logger{entry: logrus.NewEntry(base)}
	l.WithFields(Fields{"route": "sale", "phone": "whatsapp:+91"}).Info("handled")

	out := buf.String()
	assert.Contains(t, out, "route=sale")
	assert.NotContains(t, out, "phone=")
}

func TestLogger_ProductionKeepsFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	l := &logger{entry: logrus.NewEntry(base)}
	ctx, id := WithCorrelationID(context.Background())
	l.WithContext(ctx).WithField("phone", "whatsapp:+91").Info("handled")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+id)
	assert.Contains(t, out, "phone=")
}
