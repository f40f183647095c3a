package crypto

// TokenSealer защищает токен сессии, который клиент хранит в локальной БД.
// Он не знает ничего о сети или пользователях.
//
// Схема работы:
//
//	Salt   = random 16 bytes                       (Шаг 1)
//	Key    = Argon2id(hashKey, Salt)               (Шаг 2)
//	Sealed = base64(Salt || Nonce || AES-GCM(Key)) (Шаг 3)
type TokenSealer interface {
	// Seal шифрует токен и возвращает base64-строку, пригодную для
	// хранения в TEXT-колонке. Пустой токен остаётся пустым.
	Seal(token string) (string, error)

	// Open расшифровывает строку, полученную из Seal. Возвращает
	// ErrSealedTokenCorrupted, если данные повреждены или ключ другой.
	Open(sealed string) (string, error)
}
