package answering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/groq/mocks"
)

func TestService_Answer(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		modelResp string
		modelErr  error
		want      string
	}{
		{
			name:      "returns model content verbatim",
			query:     "Katan silk kya hota hai?",
			modelResp: "Ji, Katan pure silk hai. धन्यवाद!",
			want:      "Ji, Katan pure silk hai. धन्यवाद!",
		},
		{
			name:      "empty content passes through",
			query:     "hello",
			modelResp: "",
			want:      "",
		},
		{
			name:     "model failure becomes apology",
			query:    "price of jangla?",
			modelErr: errors.New("rate limit exceeded"),
			want:     "Error: rate limit exceeded. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			model := mocks.NewMockChatModel(ctrl)

			model.EXPECT().
				Reply(gomock.Any(), Persona, tt.query).
				Return(tt.modelResp, tt.modelErr).
				Times(1)

			got := NewService(model).Answer(context.Background(), tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPersona(t *testing.T) {
	assert.Contains(t, Persona, "BanarsiBot")
	assert.Contains(t, Persona, "Hinglish")
	for _, term := range []string{"Katan", "Organza", "Georgette", "Jangla", "Butidar", "जी", "धन्यवाद"} {
		assert.Contains(t, Persona, term)
	}
}
