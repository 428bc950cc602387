package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// LoadCollection fetches a collection and its twelve cards. Used only on cold
// load, when no local snapshot exists.
func LoadCollection(ctx context.Context, httpClient *http.Client, baseURL, collectionID string) (*types.CollectionBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(collectionID, "collectionId"); err != nil {
		return nil, err
	}
	var bundle types.CollectionBundle
	url := fmt.Sprintf("%s/collections/%s", baseURL, collectionID)
	if err := doJSON(ctx, httpClient, http.MethodGet, url, nil, &bundle, http.StatusOK, "load collection"); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// CreateCollection creates a collection seeded with twelve blank cards.
func CreateCollection(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateCollectionRequest) (*types.CollectionBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var bundle types.CollectionBundle
	url := fmt.Sprintf("%s/collections", baseURL)
	if err := doJSON(ctx, httpClient, http.MethodPost, url, req, &bundle, http.StatusCreated, "create collection"); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// PatchCollection pushes partial collection fields and returns the server's
// canonical copy.
func PatchCollection(ctx context.Context, httpClient *http.Client, baseURL, collectionID string, req types.UpdateCollectionRequest) (*types.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(collectionID, "collectionId"); err != nil {
		return nil, err
	}
	var out types.CollectionResponse
	url := fmt.Sprintf("%s/collections/%s", baseURL, collectionID)
	if err := doJSON(ctx, httpClient, http.MethodPatch, url, req, &out, http.StatusOK, "save collection"); err != nil {
		return nil, err
	}
	return &out.Collection, nil
}
