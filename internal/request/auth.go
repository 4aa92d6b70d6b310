package request

type VoterAuthRequest struct {
	LdapNickname string `json:"ldap_nickname" validate:"required,min=1,max=100"`
	AuthCode     string `json:"auth_code" validate:"required,len=6"`
}

type JudgeAuthRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}
