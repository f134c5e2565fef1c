package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 加盐哈希，绝不落盘/打日志明文
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
