package store

import (
	"context"
	"testing"

	"github.com/gearbase/gearbase/internal/db"
	"github.com/gearbase/gearbase/internal/model"
)

func TestCreateAndGetAsset(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, err := CreateAsset(ctx, database, model.Asset{
		Name:         "FX6",
		Manufacturer: "Sony",
		Model:        "ILME-FX6",
		Type:         "camera",
		OwnedCount:   3,
	})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated asset id")
	}

	got, err := GetAsset(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("GetAsset: %v", err)
	}
	if got == nil {
		t.Fatal("expected asset, got nil")
	}
	if got.Name != "FX6" || got.OwnedCount != 3 || got.Manufacturer != "Sony" {
		t.Errorf("unexpected asset: %+v", got)
	}
}

func TestGetAssetMissing(t *testing.T) {
	database := db.NewTestDB(t)

	got, err := GetAsset(context.Background(), database, "nope")
	if err != nil {
		t.Fatalf("GetAsset: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing asset, got %+v", got)
	}
}

func TestListAssetsFiltersByType(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateAsset(ctx, database, model.Asset{Name: "FX6", Type: "camera", OwnedCount: 1})
	CreateAsset(ctx, database, model.Asset{Name: "MKH416", Type: "audio", OwnedCount: 2})

	all, err := ListAssets(ctx, database, "")
	if err != nil {
		t.Fatalf("ListAssets: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(all))
	}

	cameras, err := ListAssets(ctx, database, "camera")
	if err != nil {
		t.Fatalf("ListAssets: %v", err)
	}
	if len(cameras) != 1 || cameras[0].Name != "FX6" {
		t.Errorf("unexpected filtered assets: %+v", cameras)
	}
}

func TestUpdateAsset(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateAsset(ctx, database, model.Asset{Name: "FX6", OwnedCount: 1})

	err := UpdateAsset(ctx, database, created.ID, model.Asset{Name: "FX6 Kit", OwnedCount: 4})
	if err != nil {
		t.Fatalf("UpdateAsset: %v", err)
	}

	got, _ := GetAsset(ctx, database, created.ID)
	if got.Name != "FX6 Kit" || got.OwnedCount != 4 {
		t.Errorf("unexpected asset after update: %+v", got)
	}
}

func TestDeleteAssetHidesFromList(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateAsset(ctx, database, model.Asset{Name: "FX6", OwnedCount: 1})

	if err := DeleteAsset(ctx, database, created.ID); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}

	assets, _ := ListAssets(ctx, database, "")
	if len(assets) != 0 {
		t.Errorf("expected 0 assets after delete, got %d", len(assets))
	}

	// Soft-deleted assets are still fetchable by id.
	got, _ := GetAsset(ctx, database, created.ID)
	if got == nil || got.DeletedAt == nil {
		t.Errorf("expected soft-deleted asset, got %+v", got)
	}
}

func TestAssetImageRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateAsset(ctx, database, model.Asset{Name: "FX6", OwnedCount: 1})

	data := []byte{0xff, 0xd8, 0xff}
	if err := SetAssetImage(ctx, database, created.ID, data, "image/jpeg"); err != nil {
		t.Fatalf("SetAssetImage: %v", err)
	}

	got, mime, err := GetAssetImage(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("GetAssetImage: %v", err)
	}
	if mime != "image/jpeg" || len(got) != len(data) {
		t.Errorf("unexpected image: mime=%q len=%d", mime, len(got))
	}
}
