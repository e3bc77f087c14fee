package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// TenantIDFromPath reads the positive {tenantId} route variable
func TenantIDFromPath(r *http.Request) (int64, bool) {
	tenantID, err := strconv.ParseInt(mux.Vars(r)["tenantId"], 10, 64)
	if err != nil || tenantID <= 0 {
		return 0, false
	}
	return tenantID, true
}
