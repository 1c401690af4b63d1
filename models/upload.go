package models

// UploadedAsset, işlenmiş bir dosyanın upload sonucu.
//
// Kalıcı bir kayıt DEĞİLDİR — sadece caller'a döner; admin paneli URL'i
// ilgili içerik dosyasının bir alanına (ör: proje kapak görseli) yazar.
type UploadedAsset struct {
	URL      string `json:"url"`      // Public path (ör: /uploads/projects/kapak-1717171717171.webp)
	FileName string `json:"fileName"` // Diske yazılan dosya adı
	MimeType string `json:"type"`     // İşlem SONRASI MIME type (ör: image/webp)
}
