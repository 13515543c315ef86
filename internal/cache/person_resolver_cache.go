package cache

import (
	"strings"
	"time"

	persondomain "github.com/salespulse/salespulse/internal/person/domain"
)

const defaultPersonTTL = 5 * time.Minute

// PersonResolverCache stores hot-path person lookups for EOD submissions.
type PersonResolverCache interface {
	GetPerson(orgID, personID string) (persondomain.Person, bool)
	SetPerson(orgID, personID string, person persondomain.Person)
	InvalidatePerson(orgID, personID string)
}

type personResolverCache struct {
	persons   Cache[string, persondomain.Person]
	personTTL time.Duration
}

// NewPersonResolverCache returns an in-memory cache tuned for submissions.
func NewPersonResolverCache() PersonResolverCache {
	return &personResolverCache{
		persons:   NewTTLCache[string, persondomain.Person](),
		personTTL: defaultPersonTTL,
	}
}

func (c *personResolverCache) GetPerson(orgID, personID string) (persondomain.Person, bool) {
	return c.persons.Get(cacheKey(orgID, personID))
}

func (c *personResolverCache) SetPerson(orgID, personID string, person persondomain.Person) {
	if person.ID == 0 {
		return
	}
	c.persons.Set(cacheKey(orgID, personID), person, c.personTTL)
}

func (c *personResolverCache) InvalidatePerson(orgID, personID string) {
	c.persons.Delete(cacheKey(orgID, personID))
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}
