package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword 注册时生成 bcrypt 哈希，默认成本
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword 登录时比对明文和哈希
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
