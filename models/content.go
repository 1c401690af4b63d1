// Package models, domain modellerini barındırır.
//
// Bu dosya içerik katmanının şemasını tanımlar. Sitenin tüm içeriği
// tip başına tek bir JSON dosyasında yaşar (projects.json, team.json, ...).
// İki dosya şekli vardır:
//
//   - Singleton: Dosyanın tamamı tek bir kayıttır, yazarken komple değiştirilir
//     (site-settings, homepage, menu gibi).
//   - Collection: Dosyada belirli bir alan (ItemsField) sıralı kayıt listesi
//     tutar; CRUD işlemleri bu listenin elemanları üzerinde çalışır.
//
// Eskiden singleton seti ve alan adı tablosu iki ayrı listeydi; ikisi tek bir
// şema tanımında (Schema) birleştirildi — tek kaynaktan hem şekil hem alan adı.
package models

// ContentType, bir API çağrısının hedeflediği içerik dosyasını seçen anahtar.
// Kapalı bir kümedir: schemas tablosunda olmayan her tip, dosya I/O'su
// yapılmadan reddedilir.
type ContentType string

// DocumentKind, bir içerik dosyasının şeklini belirtir.
type DocumentKind int

const (
	// KindSingleton — dosya yazarken komple değiştirilir.
	KindSingleton DocumentKind = iota
	// KindCollection — dosyanın ItemsField alanı Item listesi tutar.
	KindCollection
)

// Schema, bir içerik tipinin şekil tanımı.
type Schema struct {
	Kind DocumentKind
	// ItemsField, collection dosyalarında kayıt listesini tutan alanın adı.
	// Singleton tiplerde boştur.
	ItemsField string
}

// Document, diskteki bir içerik dosyasının parse edilmiş hali.
// İçerik alanları serbest formdadır — her tipin kendi alanları vardır,
// backend yalnızca yapısal sözleşmeyi (id, order, ItemsField) bilir.
type Document = map[string]any

// Item, bir collection dosyasındaki tek bir kayıt.
// Zorunlu alanlar: "id" (string, benzersiz) ve "order" (sayısal sıra).
type Item = map[string]any

// schemas, içerik tiplerinin kapalı tablosu.
// Yeni bir içerik tipi eklemek = buraya bir satır + data dizinine seed dosyası.
var schemas = map[ContentType]Schema{
	// Singleton dosyalar — admin panelde tek form olarak düzenlenir
	"site-settings": {Kind: KindSingleton},
	"homepage":      {Kind: KindSingleton},
	"about":         {Kind: KindSingleton},
	"menu":          {Kind: KindSingleton},
	"contact":       {Kind: KindSingleton},
	"seo":           {Kind: KindSingleton},

	// Collection dosyalar — admin panelde liste + satır düzenleme
	"projects":        {Kind: KindCollection, ItemsField: "projects"},
	"services":        {Kind: KindCollection, ItemsField: "services"},
	"team":            {Kind: KindCollection, ItemsField: "members"},
	"clients":         {Kind: KindCollection, ItemsField: "clients"},
	"blog":            {Kind: KindCollection, ItemsField: "posts"},
	"gallery":         {Kind: KindCollection, ItemsField: "galleryImages"},
	"services-slider": {Kind: KindCollection, ItemsField: "videos"},
	"testimonials":    {Kind: KindCollection, ItemsField: "testimonials"},
	"legal":           {Kind: KindCollection, ItemsField: "documents"},
	"faq":             {Kind: KindCollection, ItemsField: "items"},
}

// SchemaFor, tipin şemasını döner. ok=false → tip tanınmıyor.
func SchemaFor(t ContentType) (Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}

// ValidContentType, tipin kapalı kümede olup olmadığını kontrol eder.
func ValidContentType(t ContentType) bool {
	_, ok := schemas[t]
	return ok
}

// ContentTypes, tanımlı tüm içerik tiplerini döner (test ve tooling için).
func ContentTypes() []ContentType {
	out := make([]ContentType, 0, len(schemas))
	for t := range schemas {
		out = append(out, t)
	}
	return out
}
