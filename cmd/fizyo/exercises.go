package main

// exercise is the mock exercise record shown by the list and detail screens.
type exercise struct {
	ID          string
	Name        string
	BodyPart    string
	Duration    string
	Repetitions string
	Description string
}

var mockExercises = []exercise{
	{ID: "1", Name: "Diz Bükme Germe", BodyPart: "Diz", Duration: "5 dakika", Repetitions: "3 set x 10", Description: "Dizi yavaşça bükün ve 5 saniye tutun."},
	{ID: "2", Name: "Bel Rotasyon Egzersizi", BodyPart: "Bel", Duration: "8 dakika", Repetitions: "2 set x 12", Description: "Sırt üstü yatarak dizleri iki yana çevirin."},
	{ID: "3", Name: "Boyun Esnetme", BodyPart: "Boyun", Duration: "3 dakika", Repetitions: "3 set x 5", Description: "Başınızı omza doğru eğin ve 10 saniye bekleyin."},
	{ID: "4", Name: "Omuz Çevirme", BodyPart: "Omuz", Duration: "6 dakika", Repetitions: "2 set x 15", Description: "Omuzları önden arkaya daireler çizerek çevirin."},
	{ID: "5", Name: "Kalça Abdüksiyon", BodyPart: "Kalça", Duration: "7 dakika", Repetitions: "3 set x 10", Description: "Yan yatarak bacağı yukarı kaldırın."},
	{ID: "6", Name: "Diz Güçlendirme", BodyPart: "Diz", Duration: "10 dakika", Repetitions: "3 set x 12", Description: "Oturarak bacağı düz şekilde uzatın ve indirin."},
}

func findExercise(id string) (exercise, bool) {
	for _, e := range mockExercises {
		if e.ID == id {
			return e, true
		}
	}
	return exercise{}, false
}
