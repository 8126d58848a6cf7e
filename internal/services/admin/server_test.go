package admin

import (
	"path/filepath"
	"testing"
)

func TestAdminServerEnvFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		environment map[string]string
		want        adminServerEnv
	}{
		{
			name: "defaults",
			want: adminServerEnv{DBPath: filepath.Join("data", "admin.db")},
		},
		{
			name: "explicit",
			environment: map[string]string{
				"DOUBTSCLEAR_ADMIN_DB_PATH":        "/var/lib/console/admin.db",
				"DOUBTSCLEAR_ADMIN_SECURE_COOKIES": "true",
			},
			want: adminServerEnv{DBPath: "/var/lib/console/admin.db", SecureCookies: true},
		},
		{
			name:        "invalid flag keeps defaults",
			environment: map[string]string{"DOUBTSCLEAR_ADMIN_SECURE_COOKIES": "sometimes"},
			want:        adminServerEnv{DBPath: filepath.Join("data", "admin.db")},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := adminServerEnvFrom(tc.environment); got != tc.want {
				t.Fatalf("adminServerEnvFrom = %+v, want %+v", got, tc.want)
			}
		})
	}
}
