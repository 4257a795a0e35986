package dto

type PermissionRequest struct {
	RoleID         string `json:"role_id"` // role name, e.g. "landlord"
	PermissionName string `json:"permission_name"`
}

func (r PermissionRequest) Missing() []string {
	var missing []string
	if r.RoleID == "" {
		missing = append(missing, "role_id")
	}
	if r.PermissionName == "" {
		missing = append(missing, "permission_name")
	}
	return missing
}

type PermissionData struct {
	RoleID         string `json:"role_id"`
	PermissionName string `json:"permission_name"`
}
