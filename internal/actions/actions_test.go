package actions

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records the last call and plays back a canned response.
type fakeBackend struct {
	method string
	path   string
	data   any

	response string
	token    string
	err      error
}

func (f *fakeBackend) Do(ctx context.Context, method, path string, data any, out any) (string, error) {
	f.method = method
	f.path = path
	f.data = data
	if f.err != nil {
		return "", f.err
	}
	if out != nil && f.response != "" {
		if err := json.Unmarshal([]byte(f.response), out); err != nil {
			return "", err
		}
	}
	return f.token, nil
}

func TestAuthenticateReturnsCurrentUser(t *testing.T) {
	backend := &fakeBackend{response: `{"id": 7, "first_name": "Ada", "email": "ada@example.com"}`}
	svc := New(backend)

	user, err := svc.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, backend.method)
	assert.Equal(t, "auth/authenticate", backend.path)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "Ada", user.FirstName)
}

func TestSignInReturnsUserAndToken(t *testing.T) {
	backend := &fakeBackend{response: `{"id": 7}`, token: "fresh-token"}
	svc := New(backend)

	user, token, err := svc.SignIn(context.Background(), SignInParams{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "auth/signin", backend.path)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, 7, user.ID)
}

func TestGetAccountSendsShareableIDAsQueryParam(t *testing.T) {
	backend := &fakeBackend{response: `{"data": {"shareable_id": "abc"}, "transactions": []}`}
	svc := New(backend)

	detail, err := svc.GetAccount(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, backend.method)
	assert.Equal(t, "bank/getAccount", backend.path)
	assert.Equal(t, map[string]string{"shareableId": "abc"}, backend.data)
	assert.Equal(t, "abc", detail.Data.ShareableID)
}

func TestCreateLinkTokenUnwrapsResponse(t *testing.T) {
	backend := &fakeBackend{response: `{"link_token": "link-sandbox-123"}`}
	svc := New(backend)

	token, err := svc.CreateLinkToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bank/plaid/create_link_token", backend.path)
	assert.Equal(t, "link-sandbox-123", token)
}

func TestCreateTransactionStampsChannelAndCategory(t *testing.T) {
	backend := &fakeBackend{response: `{"id": "txn_1"}`}
	svc := New(backend)

	_, err := svc.CreateTransaction(context.Background(), TransactionParams{
		Name:     "Rent",
		Amount:   42.50,
		SenderID: 7,
		// Deliberately wrong values; they must be overwritten.
		Channel:  "carrier-pigeon",
		Category: "MISC",
	})
	require.NoError(t, err)

	sent, ok := backend.data.(TransactionParams)
	require.True(t, ok)
	assert.Equal(t, "online", sent.Channel)
	assert.Equal(t, "TRANSFER", sent.Category)
}

func TestCreateTransferSendsFundingSourceURLs(t *testing.T) {
	backend := &fakeBackend{response: `{"id": "tr_1", "status": "pending"}`}
	svc := New(backend)

	_, err := svc.CreateTransfer(context.Background(), TransferParams{
		SourceFundingSourceURL:      "https://api.example.com/funding-sources/a",
		DestinationFundingSourceURL: "https://api.example.com/funding-sources/b",
		Amount:                      "25.00",
	})
	require.NoError(t, err)

	sent, ok := backend.data.(TransferParams)
	require.True(t, ok)
	assert.Equal(t, "25.00", sent.Amount)
	assert.Equal(t, "transaction/createTransfer", backend.path)
}
