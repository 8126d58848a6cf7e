package consultapi

import (
	"errors"
	"testing"
	"time"
)

func TestDecodeWalletListAcceptsBothShapes(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"array":    `[{"_id":"w1","money":500,"offer":"10"}]`,
		"envelope": `{"wallets":[{"_id":"w1","money":"500","offer":10}]}`,
	} {
		wallets, err := decodeWalletList([]byte(body))
		if err != nil {
			t.Fatalf("%s: decode: %v", name, err)
		}
		if len(wallets) != 1 || wallets[0].Money != 500 || wallets[0].Offer != 10 {
			t.Fatalf("%s: wallets = %+v", name, wallets)
		}
	}
}

func TestDecodeExpertDetailPopulatedRefs(t *testing.T) {
	t.Parallel()

	body := `{"expert":{"_id":"e1","name":"Asha","verified":"verified","qualification":{"_id":"q1","name":"PhD"},
"designation":"d1","expertise":[{"_id":"x1","name":"Maths"}],"perMinuteCharge":{"amount":"12"},"experience":4,
"createdAt":"2024-05-01T10:00:00.000Z"}}`
	expert, err := decodeExpertDetail([]byte(body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if expert.Qualification.Name != "PhD" || expert.Designation.ID != "d1" || expert.Designation.Name != "" {
		t.Fatalf("refs = %+v / %+v", expert.Qualification, expert.Designation)
	}
	if len(expert.Expertise) != 1 || expert.Expertise[0].Name != "Maths" {
		t.Fatalf("expertise = %+v", expert.Expertise)
	}
	if expert.PerMinuteCharge.Amount != 12 || expert.Experience != 4 {
		t.Fatalf("numbers = %v / %v", expert.PerMinuteCharge.Amount, expert.Experience)
	}
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if !expert.CreatedAt.Equal(want) {
		t.Fatalf("createdAt = %v, want %v", expert.CreatedAt.Time, want)
	}
}

func TestDecodeExpertDetailRequiresExpert(t *testing.T) {
	t.Parallel()

	if _, err := decodeExpertDetail([]byte(`{}`)); err == nil {
		t.Fatal("expected error for missing expert")
	}
}

func TestDecodeExpertiseEnvelope(t *testing.T) {
	t.Parallel()

	items, err := decodeExpertiseList([]byte(`{"success":true,"data":[{"_id":"x1","name":"Maths","category":["Algebra","Calculus"]}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 || len(items[0].Category) != 2 {
		t.Fatalf("items = %+v", items)
	}

	tests := map[string]string{
		"success false": `{"success":false}`,
		"data missing":  `{"success":true}`,
		"data object":   `{"success":true,"data":{"name":"x"}}`,
	}
	for name, body := range tests {
		_, err := decodeExpertiseList([]byte(body))
		var envelope envelopeFailure
		if !errors.As(err, &envelope) {
			t.Fatalf("%s: err = %v, want envelope failure", name, err)
		}
		if envelope.Error() != InvalidEnvelopeMessage {
			t.Fatalf("%s: message = %q", name, envelope.Error())
		}
	}
}

func TestDecodeCallListParties(t *testing.T) {
	t.Parallel()

	calls, err := decodeCallList([]byte(`{"calls":[{"_id":"c1","caller":{"id":{"_id":"u1","name":"Ravi"},"type":"user"},
"receiver":{"id":null,"type":"expert"},"callType":"video","duration":125,"status":"ended"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if calls[0].Caller.Ref.Name != "Ravi" || !calls[0].Receiver.Ref.IsZero() {
		t.Fatalf("parties = %+v / %+v", calls[0].Caller, calls[0].Receiver)
	}
	if calls[0].Duration.Int() != 125 {
		t.Fatalf("duration = %v", calls[0].Duration)
	}
}

func TestDecodeLoginRequiresToken(t *testing.T) {
	t.Parallel()

	if _, err := decodeLogin([]byte(`{"user":{"_id":"a"}}`)); err == nil {
		t.Fatal("expected error without token")
	}
}

func TestDecodeAck(t *testing.T) {
	t.Parallel()

	for _, body := range []string{``, `   `, `"deleted"`, `{"message":"ok"}`, `{"success":true}`} {
		if _, err := decodeAck([]byte(body)); err != nil {
			t.Fatalf("decodeAck(%q) = %v", body, err)
		}
	}
	_, err := decodeAck([]byte(`{"success":false,"message":"Wallet in use"}`))
	if err == nil || err.Error() != "Wallet in use" {
		t.Fatalf("decodeAck failure = %v", err)
	}
}

func TestNumberFlexibleDecoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Number
	}{
		{raw: `12.5`, want: 12.5},
		{raw: `"40"`, want: 40},
		{raw: `" 7 "`, want: 7},
		{raw: `"abc"`, want: 0},
		{raw: `null`, want: 0},
		{raw: `{}`, want: 0},
	}
	for _, tc := range tests {
		var n Number
		if err := n.UnmarshalJSON([]byte(tc.raw)); err != nil {
			t.Fatalf("UnmarshalJSON(%s) = %v", tc.raw, err)
		}
		if n != tc.want {
			t.Fatalf("UnmarshalJSON(%s) = %v, want %v", tc.raw, n, tc.want)
		}
	}
	if got := Number(12.5).String(); got != "12.5" {
		t.Fatalf("String = %q", got)
	}
}

func TestTimestampToleratesBadValues(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`null`, `""`, `"yesterday"`, `42`} {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("UnmarshalJSON(%s) = %v", raw, err)
		}
		if !ts.IsZero() {
			t.Fatalf("UnmarshalJSON(%s) = %v, want zero", raw, ts.Time)
		}
	}
}

func TestDocumentURL(t *testing.T) {
	t.Parallel()

	base := "https://uploads.example.com/"
	tests := []struct {
		path string
		want string
	}{
		{path: "", want: ""},
		{path: "https://cdn.example.com/a.png", want: "https://cdn.example.com/a.png"},
		{path: "/uploads/a.png", want: "https://uploads.example.com/uploads/a.png"},
		{path: "uploads/a.png", want: "https://uploads.example.com/uploads/a.png"},
	}
	for _, tc := range tests {
		if got := DocumentURL(base, tc.path); got != tc.want {
			t.Fatalf("DocumentURL(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
