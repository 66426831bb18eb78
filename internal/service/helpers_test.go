package service

import (
	"Crudboard/internal/api"
	"Crudboard/internal/config"
	"Crudboard/internal/model"
	"Crudboard/internal/pkg/localstore"
	"Crudboard/internal/session"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEnv(t *testing.T, baseURL string) (*api.Client, *session.Store) {
	t.Helper()
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	sess := session.NewStore(kv)
	cfg := &config.Config{
		Server: config.ServerConfig{BaseURL: baseURL, TimeoutSeconds: 10},
	}
	return api.NewClient(cfg, sess), sess
}

func loginAs(t *testing.T, sess *session.Store, idx int64, name string) {
	t.Helper()
	require.NoError(t, sess.SetSession("T", &model.UserProfile{UserIdx: idx, UserName: name}, false))
}
