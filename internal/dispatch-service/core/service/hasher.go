package service

import "golang.org/x/crypto/bcrypt"

const HashFactor = 10

// Hasher wraps bcrypt password hashing. Each digest carries its own random
// salt; the source system's process-wide deterministic salt was dropped in
// favor of per-password salts.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: HashFactor}
}

func (h *Hasher) Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), h.cost)
}

func (h *Hasher) Check(hashed []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}
