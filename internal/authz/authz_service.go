package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"go-bms/internal/domain"
)

const modelConf = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

//go:generate mockgen -source=authz_service.go -destination=mock/authz_service_mock.go -package=mock
type Service interface {
	Enforce(role domain.Role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

// NewService builds an enforcer over the static policy table. Policies
// never change at runtime, so they are loaded once.
func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelConf)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range Policies {
		if _, err := enforcer.AddPolicy(string(p.Role), p.Resource, p.Action); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role domain.Role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(string(role), resource, action)
}
