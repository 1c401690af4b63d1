// Package repository, veri erişim katmanı (Data Access Layer).
//
// İki tür depo var:
//   - ContentRepository: site içeriği, içerik türü başına bir JSON dosyası
//   - LeadRepository: form başvuruları, SQLite
//
// Interface + implementasyon ayrımı test edilebilirlik içindir: servisler
// interface'e bağımlıdır, testlerde in-memory fake kullanılabilir.
package repository

import "github.com/bosnamedia/bosna-backend/models"

// ContentRepository, içerik dokümanlarının okuma/yazma arayüzü.
//
// Doküman bazında çalışır: bir içerik türünün TÜM verisi tek seferde okunur
// ve tek seferde yazılır. Alan bazlı güncelleme servis katmanının işidir —
// ama oku-değiştir-yaz döngüsünün kendisi Update üzerinden yürür, yoksa iki
// eşzamanlı mutasyon birbirinin yazdığını ezer.
type ContentRepository interface {
	// Read, içerik türünün dokümanını okur.
	// Dosya henüz yoksa pkg.ErrNotFound sarmalı hata döner.
	Read(contentType models.ContentType) (models.Document, error)

	// Write, dokümanı komple diske yazar (singleton overwrite için).
	Write(contentType models.ContentType, doc models.Document) error

	// Update, dokümanı TEK kilit altında okur, mutate'i uygular ve sonucu
	// yazar. Collection mutasyonlarının (append/merge/delete) tamamı buradan
	// geçer. mutate hata dönerse hiçbir şey yazılmaz, dosya olduğu gibi kalır.
	Update(contentType models.ContentType, mutate func(models.Document) (models.Document, error)) error

	// Exists, içerik dosyasının diskte olup olmadığını söyler.
	Exists(contentType models.ContentType) bool
}
