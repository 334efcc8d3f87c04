package i18n

// Message keys. Values are fmt-style formats.
const (
	KeyTitle            = "title"
	KeyProducts         = "products"
	KeyBerries          = "berries"
	KeyActivity         = "activity"
	KeyAddProduct       = "addProduct"
	KeyEditProduct      = "editProduct"
	KeyEnglish          = "english"
	KeyIndonesia        = "indonesia"
	KeySearch           = "common.search"
	KeyAdd              = "common.add"
	KeyNo               = "common.no"
	KeyName             = "common.name"
	KeyActions          = "common.actions"
	KeyNoData           = "common.noData"
	KeyLoading          = "common.loading"
	KeySave             = "common.save"
	KeyCancel           = "common.cancel"
	KeyItemsPerPage     = "table.itemsPerPage"
	KeyShowing          = "table.showing"
	KeyPageOf           = "table.pageOf"
	KeyPrevious         = "table.previous"
	KeyNext             = "table.next"
	KeySortAsc          = "table.sortAsc"
	KeySortDesc         = "table.sortDesc"
	KeyPrice            = "product.price"
	KeyCategory         = "product.category"
	KeyDescription      = "product.description"
	KeyImage            = "product.image"
	KeyRatingRate       = "product.ratingRate"
	KeyRatingCount      = "product.ratingCount"
	KeyProductName      = "product.title"
	KeyConfirmDelete    = "product.confirmDelete"
	KeyDeleted          = "product.deleted"
	KeySaved            = "product.saved"
	KeyCreated          = "product.created"
	KeyMustBeNumber     = "product.mustBeNumber"
	KeyLoadFailed       = "status.loadFailed"
	KeyReset            = "status.reset"
	KeyBerryDetail      = "berry.detailTitle"
	KeyBerryName        = "berry.name"
	KeyBerryID          = "berry.id"
	KeyGrowthTime       = "berry.growthTime"
	KeyMaxHarvest       = "berry.maxHarvest"
	KeySize             = "berry.size"
	KeySmoothness       = "berry.smoothness"
	KeySoilDryness      = "berry.soilDryness"
	KeyFirmness         = "berry.firmness"
	KeyNaturalGiftPower = "berry.naturalGiftPower"
	KeyFlavors          = "berry.flavors"
	KeySelectBerry      = "berry.selectBerryPrompt"
	KeyBerryNotFound    = "berry.notFound"
	KeyGo               = "berry.go"
	KeyGrowth           = "berry.growth"
	KeyPhysical         = "berry.physical"
	KeyDetailHint       = "berry.detailHint"
	KeyFormHint         = "product.formHint"
)

var messages = map[string]map[string]string{
	"en": {
		KeyTitle:            "Larder",
		KeyProducts:         "Products",
		KeyBerries:          "Berries",
		KeyActivity:         "Activity",
		KeyAddProduct:       "Add product",
		KeyEditProduct:      "Edit product",
		KeyEnglish:          "English",
		KeyIndonesia:        "Indonesia",
		KeySearch:           "Search",
		KeyAdd:              "Add",
		KeyNo:               "No.",
		KeyName:             "Name",
		KeyActions:          "Actions",
		KeyNoData:           "No data",
		KeyLoading:          "Loading…",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyItemsPerPage:     "Items per page",
		KeyShowing:          "Showing %d to %d of %d results",
		KeyPageOf:           "Page %d of %d",
		KeyPrevious:         "Previous",
		KeyNext:             "Next",
		KeySortAsc:          "A→Z",
		KeySortDesc:         "Z→A",
		KeyPrice:            "Price",
		KeyCategory:         "Category",
		KeyDescription:      "Description",
		KeyImage:            "Image",
		KeyRatingRate:       "Rate",
		KeyRatingCount:      "Count",
		KeyProductName:      "Name",
		KeyConfirmDelete:    "Delete %q? (y/n)",
		KeyDeleted:          "Deleted %q",
		KeySaved:            "Saved %q",
		KeyCreated:          "Created %q",
		KeyMustBeNumber:     "Must be a number",
		KeyLoadFailed:       "Load failed: %s",
		KeyReset:            "Filters reset",
		KeyBerryDetail:      "Berry detail",
		KeyBerryName:        "Name",
		KeyBerryID:          "ID",
		KeyGrowthTime:       "Growth time",
		KeyMaxHarvest:       "Max harvest",
		KeySize:             "Size",
		KeySmoothness:       "Smoothness",
		KeySoilDryness:      "Soil dryness",
		KeyFirmness:         "Firmness",
		KeyNaturalGiftPower: "Natural gift power",
		KeyFlavors:          "Flavors",
		KeySelectBerry:      "Select a berry and press enter",
		KeyBerryNotFound:    "No berry named %q",
		KeyGo:               "Go",
		KeyGrowth:           "Growth",
		KeyPhysical:         "Physical",
		KeyDetailHint:       "←/→ select  enter %s  esc close",
		KeyFormHint:         "tab: next  enter: %s  ctrl+s: %s  esc: %s",
	},
	"id": {
		KeyTitle:            "Larder",
		KeyProducts:         "Produk",
		KeyBerries:          "Beri",
		KeyActivity:         "Aktivitas",
		KeyAddProduct:       "Tambah produk",
		KeyEditProduct:      "Ubah produk",
		KeyEnglish:          "Inggris",
		KeyIndonesia:        "Indonesia",
		KeySearch:           "Cari",
		KeyAdd:              "Tambah",
		KeyNo:               "No.",
		KeyName:             "Nama",
		KeyActions:          "Aksi",
		KeyNoData:           "Tidak ada data",
		KeyLoading:          "Memuat…",
		KeySave:             "Simpan",
		KeyCancel:           "Batal",
		KeyItemsPerPage:     "Item per halaman",
		KeyShowing:          "Menampilkan %d sampai %d dari %d hasil",
		KeyPageOf:           "Halaman %d dari %d",
		KeyPrevious:         "Sebelumnya",
		KeyNext:             "Berikutnya",
		KeySortAsc:          "A→Z",
		KeySortDesc:         "Z→A",
		KeyPrice:            "Harga",
		KeyCategory:         "Kategori",
		KeyDescription:      "Deskripsi",
		KeyImage:            "Gambar",
		KeyRatingRate:       "Nilai",
		KeyRatingCount:      "Jumlah",
		KeyProductName:      "Nama",
		KeyConfirmDelete:    "Hapus %q? (y/n)",
		KeyDeleted:          "%q dihapus",
		KeySaved:            "%q disimpan",
		KeyCreated:          "%q dibuat",
		KeyMustBeNumber:     "Harus berupa angka",
		KeyLoadFailed:       "Gagal memuat: %s",
		KeyReset:            "Filter diatur ulang",
		KeyBerryDetail:      "Detail beri",
		KeyBerryName:        "Nama",
		KeyBerryID:          "ID",
		KeyGrowthTime:       "Waktu tumbuh",
		KeyMaxHarvest:       "Panen maksimum",
		KeySize:             "Ukuran",
		KeySmoothness:       "Kehalusan",
		KeySoilDryness:      "Kekeringan tanah",
		KeyFirmness:         "Kekerasan",
		KeyNaturalGiftPower: "Kekuatan natural gift",
		KeyFlavors:          "Rasa",
		KeySelectBerry:      "Pilih beri lalu tekan enter",
		KeyBerryNotFound:    "Tidak ada beri bernama %q",
		KeyGo:               "Cari",
		KeyGrowth:           "Pertumbuhan",
		KeyPhysical:         "Fisik",
		KeyDetailHint:       "←/→ pilih  enter %s  esc tutup",
		KeyFormHint:         "tab: berikutnya  enter: %s  ctrl+s: %s  esc: %s",
	},
}
