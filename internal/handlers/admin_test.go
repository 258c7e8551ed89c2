package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/database"
	"storefront/internal/models"
)

func adminAccount(t *testing.T, password string) models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return models.Admin{
		ID:           primitive.NewObjectID(),
		Email:        "ops@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
}

func loginBody(email, password string) []byte {
	body, _ := json.Marshal(AdminLoginRequest{Email: email, Password: password})
	return body
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)
	admin := adminAccount(t, "s3cret")
	env.admins.EXPECT().FindAdminByEmail(gomock.Any(), "ops@example.com").Return(admin, nil)

	w := env.do(http.MethodPost, "/admin/login", loginBody("  OPS@example.com ", "s3cret"), nil)
	expectStatus(t, w, http.StatusOK)

	var body map[string]any
	decode(t, w, &body)
	raw, _ := body["token"].(string)

	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil },
		jwt.WithoutClaimsValidation())
	if err != nil {
		t.Fatalf("expected a valid token, got %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != models.RoleAdmin || claims["sub"] != admin.ID.Hex() {
		t.Fatalf("unexpected claims %v", claims)
	}
}

func TestAdminLoginRejects(t *testing.T) {
	env := newTestEnv(t)
	admin := adminAccount(t, "s3cret")

	w := env.do(http.MethodPost, "/admin/login", loginBody("", ""), nil)
	expectStatus(t, w, http.StatusBadRequest)

	env.admins.EXPECT().FindAdminByEmail(gomock.Any(), "ops@example.com").Return(admin, nil)
	w = env.do(http.MethodPost, "/admin/login", loginBody("ops@example.com", "wrong"), nil)
	expectStatus(t, w, http.StatusUnauthorized)

	env.admins.EXPECT().FindAdminByEmail(gomock.Any(), "nobody@example.com").Return(models.Admin{}, database.ErrNotFound)
	w = env.do(http.MethodPost, "/admin/login", loginBody("nobody@example.com", "s3cret"), nil)
	expectStatus(t, w, http.StatusUnauthorized)
}

func adminHeaders(t *testing.T) map[string]string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops", "role": models.RoleAdmin})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + signed}
}

const importPayload = `{"data":{"products":[
	{"_id":"ok","name":"Mug","price":"12.5","variants":[
		{"sku":"mug-w","stock":3,"attributes":[{"key":"Color","value":"White"}]},
		{"sku":"mug-b","stock":1,"attributes":[{"key":"Color","value":"Black"}]}]},
	{"_id":"dup","name":"Cap","variants":[
		{"sku":"cap-1","attributes":[{"key":"Size","value":"M"},{"key":"Color","value":"Red"}]},
		{"sku":"cap-2","attributes":[{"key":"Color","value":"Red"},{"key":"Size","value":"M"}]}]}
]}}`

func TestImportProducts(t *testing.T) {
	env := newTestEnv(t)
	env.dbUp()
	env.products.EXPECT().Upsert(gomock.Any(), database.SourceOfficial, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ database.Source, products []models.Product) (database.UpsertResult, error) {
			if len(products) != 1 || products[0].ID != "ok" || products[0].Price != 12.5 {
				t.Fatalf("unexpected products to upsert %+v", products)
			}
			return database.UpsertResult{Inserted: 1}, nil
		})

	w := env.do(http.MethodPost, "/admin/api/products/import?source=official", []byte(importPayload), adminHeaders(t))
	expectStatus(t, w, http.StatusOK)

	var result importResult
	decode(t, w, &result)
	if result.Received != 2 || result.Inserted != 1 || len(result.Rejected) != 1 {
		t.Fatalf("unexpected import result %+v", result)
	}
	if result.Rejected[0].ID != "dup" || len(result.Rejected[0].Errors) != 1 {
		t.Fatalf("unexpected rejection %+v", result.Rejected[0])
	}
}

func TestImportProductsRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/admin/api/products/import", []byte(`[]`), nil)
	expectStatus(t, w, http.StatusUnauthorized)

	w = env.do(http.MethodPost, "/admin/api/products/import", []byte(`{"items":[]}`), adminHeaders(t))
	expectStatus(t, w, http.StatusBadRequest)

	onlyDup := `[{"_id":"dup","variants":[
		{"sku":"a","attributes":[{"key":"Size","value":"M"}]},
		{"sku":"b","attributes":[{"key":"Size","value":"M"}]}]}]`
	w = env.do(http.MethodPost, "/admin/api/products/import", []byte(onlyDup), adminHeaders(t))
	expectStatus(t, w, http.StatusUnprocessableEntity)
}
