package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// PatchCard pushes the full current editable field set of a card and returns
// the server's canonical copy. The request always carries every editable
// field, never a delta; see types.UpdateCardRequest.
func PatchCard(ctx context.Context, httpClient *http.Client, baseURL, cardID string, req types.UpdateCardRequest) (*types.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(cardID, "cardId"); err != nil {
		return nil, err
	}
	var out types.CardResponse
	url := fmt.Sprintf("%s/cards/%s", baseURL, cardID)
	if err := doJSON(ctx, httpClient, http.MethodPatch, url, req, &out, http.StatusOK, "save card"); err != nil {
		return nil, err
	}
	return &out.Card, nil
}
