package i18n

import "strings"

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

// RTL reports whether the language is written right to left.
func RTL(lang Language) bool {
	return lang == Arabic
}

// T returns the translation of key in lang, falling back to English and then to the key itself.
func T(lang Language, key string) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[English][key]; ok {
		return s
	}
	return key
}

// Table returns a copy of the whole table for lang.
func Table(lang Language) map[string]string {
	src, ok := translations[lang]
	if !ok {
		src = translations[English]
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

var translations = map[Language]map[string]string{
	English: {
		"appName":           "Whisper",
		"login":             "Log in",
		"logout":            "Log out",
		"register":          "Sign up",
		"profile":           "Profile",
		"messages":          "Messages",
		"settings":          "Settings",
		"dashboard":         "Dashboard",
		"notifications":     "Notifications",
		"home":              "Home",
		"send":              "Send",
		"reply":             "Reply",
		"cancel":            "Cancel",
		"save":              "Save",
		"delete":            "Delete",
		"search":            "Search",
		"username":          "Username",
		"password":          "Password",
		"confirmPassword":   "Confirm Password",
		"email":             "Email",
		"forgotPassword":    "Forgot Password?",
		"resetPassword":     "Reset Password",
		"loginSuccess":      "Successfully logged in",
		"loginFailed":       "Login failed. Please check your credentials.",
		"registerSuccess":   "Successfully registered",
		"logoutSuccess":     "Successfully logged out",
		"compose":           "Compose Message",
		"sendTo":            "Send to:",
		"sendAnonymously":   "Send anonymously",
		"yourMessage":       "Your message:",
		"sentAt":            "Sent at",
		"receivedAt":        "Received at",
		"from":              "From",
		"to":                "To",
		"anonymous":         "Anonymous",
		"messageEmpty":      "Message cannot be empty",
		"messageSent":       "Message sent successfully",
		"messageDeleted":    "Message deleted",
		"replyTo":           "Reply to",
		"likes":             "Likes",
		"editProfile":       "Edit Profile",
		"changeAvatar":      "Change Avatar",
		"displayName":       "Display Name",
		"bio":               "Bio",
		"role":              "Role",
		"student":           "Student",
		"admin":             "Admin",
		"owner":             "Owner",
		"joinedOn":          "Joined on",
		"profileUpdated":    "Profile updated successfully",
		"markAsRead":        "Mark as read",
		"markAllAsRead":     "Mark all as read",
		"newMessage":        "New message",
		"newReply":          "New reply",
		"newLike":           "New like",
		"notFound":          "404",
		"pageNotFound":      "Oops! Page not found",
		"returnHome":        "Return to Home",
		"lightMode":         "Light Mode",
		"darkMode":          "Dark Mode",
		"toggleTheme":       "Toggle theme",
		"allRightsReserved": "All rights reserved",
		"privacyPolicy":     "Privacy Policy",
		"termsOfService":    "Terms of Service",
		"replySent":         "Reply sent",
		"replyDeleted":      "Reply deleted",
		"messageLiked":      "Liked message",
		"languageChanged":   "Language changed",
		"everyone":          "Everyone",
		"allCleared":        "All notifications cleared",
	},
	Arabic: {
		"appName":           "همس",
		"login":             "تسجيل الدخول",
		"logout":            "تسجيل الخروج",
		"register":          "إنشاء حساب",
		"profile":           "الملف الشخصي",
		"messages":          "الرسائل",
		"settings":          "الإعدادات",
		"dashboard":         "لوحة التحكم",
		"notifications":     "الإشعارات",
		"home":              "الرئيسية",
		"send":              "إرسال",
		"reply":             "رد",
		"cancel":            "إلغاء",
		"save":              "حفظ",
		"delete":            "حذف",
		"search":            "بحث",
		"username":          "اسم المستخدم",
		"password":          "كلمة المرور",
		"confirmPassword":   "تأكيد كلمة المرور",
		"email":             "البريد الإلكتروني",
		"forgotPassword":    "نسيت كلمة المرور؟",
		"resetPassword":     "إعادة تعيين كلمة المرور",
		"loginSuccess":      "تم تسجيل الدخول بنجاح",
		"loginFailed":       "فشل تسجيل الدخول. يرجى التحقق من بيانات الاعتماد الخاصة بك.",
		"registerSuccess":   "تم التسجيل بنجاح",
		"logoutSuccess":     "تم تسجيل الخروج بنجاح",
		"compose":           "كتابة رسالة",
		"sendTo":            "إرسال إلى:",
		"sendAnonymously":   "إرسال بشكل مجهول",
		"yourMessage":       "رسالتك:",
		"sentAt":            "أرسلت في",
		"receivedAt":        "استلمت في",
		"from":              "من",
		"to":                "إلى",
		"anonymous":         "مجهول",
		"messageEmpty":      "لا يمكن أن تكون الرسالة فارغة",
		"messageSent":       "تم إرسال الرسالة بنجاح",
		"messageDeleted":    "تم حذف الرسالة",
		"replyTo":           "الرد على",
		"likes":             "إعجابات",
		"editProfile":       "تعديل الملف الشخصي",
		"changeAvatar":      "تغيير الصورة الرمزية",
		"displayName":       "الاسم المعروض",
		"bio":               "نبذة",
		"role":              "الدور",
		"student":           "طالب",
		"admin":             "مسؤول",
		"owner":             "مالك",
		"joinedOn":          "انضم في",
		"profileUpdated":    "تم تحديث الملف الشخصي بنجاح",
		"markAsRead":        "تعليم كمقروءة",
		"markAllAsRead":     "تعليم الكل كمقروء",
		"newMessage":        "رسالة جديدة",
		"newReply":          "رد جديد",
		"newLike":           "إعجاب جديد",
		"notFound":          "404",
		"pageNotFound":      "عذراً! الصفحة غير موجودة",
		"returnHome":        "العودة إلى الرئيسية",
		"lightMode":         "الوضع النهاري",
		"darkMode":          "الوضع الليلي",
		"toggleTheme":       "تبديل السمة",
		"allRightsReserved": "جميع الحقوق محفوظة",
		"privacyPolicy":     "سياسة الخصوصية",
		"termsOfService":    "شروط الخدمة",
		"replySent":         "تم إرسال الرد",
		"replyDeleted":      "تم حذف الرد",
		"messageLiked":      "تم الإعجاب بالرسالة",
		"languageChanged":   "تم تغيير اللغة",
		"everyone":          "الجميع",
		"allCleared":        "تم مسح جميع الإشعارات",
	},
}
