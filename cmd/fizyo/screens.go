package main

import (
	"fmt"

	"github.com/fiziktedavi/fizyo/pkg/fizyo"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/constants"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/router"
)

// action is one selectable button on a placeholder screen.
type action struct {
	label string
	run   func(r *router.Router) error
}

// screen is the rendered content for a route.
type screen struct {
	title   string
	body    []string
	actions []action
}

// screenResume is the transient state kept on a stack entry.
type screenResume struct {
	Cursor int
}

func goTo(id string) func(r *router.Router) error {
	return func(r *router.Router) error {
		return r.Navigate(id, nil, router.NavOptions{})
	}
}

func goBack(r *router.Router) error {
	r.Back()
	return nil
}

func logout(r *router.Router) error {
	r.Reset()
	return nil
}

func openExercise(id string) func(r *router.Router) error {
	return func(r *router.Router) error {
		return r.Navigate(constants.RouteExerciseDetail, fizyo.ExerciseDetailParams(id), router.NavOptions{})
	}
}

// enterApp leaves the auth screens behind so back never returns to them.
func enterApp(r *router.Router) error {
	return r.Navigate(constants.RouteDashboard, nil, router.NavOptions{
		PopUpTo:   constants.RouteLogin,
		Inclusive: true,
	})
}

func exerciseActions() []action {
	actions := make([]action, 0, len(mockExercises))
	for _, e := range mockExercises {
		actions = append(actions, action{
			label: fmt.Sprintf("%s · %s · %s", e.Name, e.BodyPart, e.Duration),
			run:   openExercise(e.ID),
		})
	}
	return actions
}

func screenFor(entry router.Entry) screen {
	switch entry.Route {
	case constants.RouteLogin:
		return screen{
			title: "Giriş",
			body:  []string{"Fizik tedavi yolculuğunuza devam edin."},
			actions: []action{
				{"Giriş yap", enterApp},
				{"Kayıt ol", goTo(constants.RouteRegister)},
				{"Şifremi unuttum", goTo(constants.RouteForgotPassword)},
			},
		}
	case constants.RouteRegister:
		return screen{
			title: "Kayıt",
			body:  []string{"Yeni bir hesap oluşturun."},
			actions: []action{
				{"Kayıt ol", goTo(constants.RouteOnboarding)},
				{"Zaten hesabım var, giriş yap", goBack},
			},
		}
	case constants.RouteForgotPassword:
		return screen{
			title: "Şifremi Unuttum",
			body:  []string{"E-posta adresinize bir sıfırlama bağlantısı göndereceğiz."},
			actions: []action{
				{"Bağlantı gönder", goBack},
			},
		}
	case constants.RouteOnboarding:
		return screen{
			title: "Hoş Geldiniz",
			body: []string{
				"Günlük egzersizlerinizi takip edin.",
				"Terapistinizle görüntülü görüşün.",
				"Sıralamada yerinizi görün.",
			},
			actions: []action{
				{"Başla", enterApp},
			},
		}
	case constants.RouteDashboard:
		return screen{
			title: "Bugün",
			body: []string{
				"Seri: 5 gün   Tamamlanan: 12 egzersiz   Puan: 340",
				"Harika gidiyorsun, bugün 2 egzersiz kaldı!",
			},
			actions: []action{
				{"Egzersizler", goTo(constants.RouteExerciseList)},
				{"Takvim", goTo(constants.RouteExerciseCalendar)},
				{"Sıralama", goTo(constants.RouteLeaderboard)},
				{"Terapistle görüş", goTo(constants.RouteTherapistCall)},
				{"Bildirimler", goTo(constants.RouteNotifications)},
				{"Profil", goTo(constants.RouteProfile)},
				{"Ayarlar", goTo(constants.RouteSettings)},
			},
		}
	case constants.RouteExerciseList:
		return screen{
			title:   "Egzersizler",
			body:    []string{"Size atanan egzersizler."},
			actions: exerciseActions(),
		}
	case constants.RouteExerciseDetail:
		return exerciseDetailScreen(entry.Params[constants.ParamExerciseID])
	case constants.RouteExerciseCalendar:
		return screen{
			title: "Egzersiz Takvimi",
			body:  []string{"Bugünün programı:"},
			actions: append(exerciseActions()[:2:2],
				action{"Tüm egzersizler", goTo(constants.RouteExerciseList)},
			),
		}
	case constants.RouteLeaderboard:
		return screen{
			title: "Sıralama",
			body: []string{
				"1. Ayşe K.   420 puan",
				"2. Mehmet T. 385 puan",
				"3. Sen       340 puan",
			},
			actions: []action{
				{"Profilim", goTo(constants.RouteProfile)},
			},
		}
	case constants.RouteProfile:
		return screen{
			title: "Profil",
			body:  []string{"Toplam süre: 3 saat 20 dakika", "Rozetler: 4"},
			actions: []action{
				{"Ayarlar", goTo(constants.RouteSettings)},
				{"Sıralamayı gör", goTo(constants.RouteLeaderboard)},
				{"Çıkış yap", logout},
			},
		}
	case constants.RouteTherapistCall:
		return screen{
			title: "Terapist Görüşmesi",
			body:  []string{"Dr. Elif Yılmaz bağlanıyor..."},
			actions: []action{
				{"Görüşmeyi bitir", goBack},
			},
		}
	case constants.RouteSettings:
		return screen{
			title: "Ayarlar",
			body:  []string{"Bildirimler: Açık", "Karanlık tema: Kapalı"},
			actions: []action{
				{"Geri", goBack},
				{"Çıkış yap", logout},
			},
		}
	case constants.RouteNotifications:
		return screen{
			title: "Bildirimler",
			body:  []string{"Bugün 2 egzersiziniz var.", "Terapistiniz yeni bir program ekledi."},
			actions: []action{
				{"Geri", goBack},
			},
		}
	}
	return screen{title: entry.Path, body: []string{"Bu ekran henüz hazır değil."}}
}

func exerciseDetailScreen(id string) screen {
	e, ok := findExercise(id)
	if !ok {
		return screen{
			title:   "Egzersiz",
			body:    []string{fmt.Sprintf("Egzersiz bulunamadı: %q", id)},
			actions: []action{{"Geri", goBack}},
		}
	}
	return screen{
		title: e.Name,
		body: []string{
			"Bölge: " + e.BodyPart,
			"Süre: " + e.Duration,
			"Tekrar: " + e.Repetitions,
			e.Description,
		},
		actions: []action{{"Geri", goBack}},
	}
}
