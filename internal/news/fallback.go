// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package news

import "github.com/bmbuzz/bmbuzz/internal/model"

// FallbackPosts returns the built-in post set the public feed renders when
// the content store cannot be reached. Unlike mapped posts, these carry
// real hand-written translations per language.
func FallbackPosts() []model.Post {
	return []model.Post{
		{
			ID:       "7",
			Category: "News",
			Author:   "Deepankar Jain",
			Date:     "Oct 24, 2025",
			Image:    "https://images.unsplash.com/photo-1514525253361-bee8718a7439?auto=format&fit=crop&q=80&w=1200",
			Featured: true,
			Translations: map[string]model.Translation{
				"en": {
					Title:   "The 8-Year Journey of 'Banar Moynago': A Masterpiece Matured Through Time",
					Excerpt: "From a 2017 composition to a 2025 official release, 'Banar Moynago' is more than just a song.",
					Content: "<h2>The Genesis</h2><p>The journey began in 2017... (Full English Article Content)</p>",
				},
				"bn": {
					Title:   "'বানার ময়নাগো'-র ৮ বছরের যাত্রা: সময়ের সাথে পরিপক্ক এক মাস্টারপিস",
					Excerpt: "২০১৭ সালের সুর থেকে ২০২৫-এ অফিসিয়াল রিলিজ, 'বানার ময়নাগো' কেবল একটি গান নয়—এটি একটি আবেগ।",
					Content: "<h2>সূচনা</h2><p>২০১৭ সালে এই গানের যাত্রা শুরু হয়... (সম্পূর্ণ নিবন্ধ)</p>",
				},
				"hi": {
					Title:   "'बनार मयनागो' की 8 साल की यात्रा: समय के साथ परिपक्व हुई एक उत्कृष्ट कृति",
					Excerpt: "2017 की रचना से लेकर 2025 में आधिकारिक रिलीज तक, 'बनार मयनागो' सिर्फ एक गाना नहीं है।",
					Content: "<h2>उत्पत्ति</h2><p>यह यात्रा 2017 में शुरू हुई थी... (पूरा लेख)</p>",
				},
			},
		},
		{
			ID:       "1",
			Category: "Events",
			Author:   "Admin",
			Date:     "Oct 23, 2025",
			Image:    "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&q=80&w=800",
			Translations: map[string]model.Translation{
				"en": {
					Title:   "Bishnupriya Literature Festival 2025 Schedule Released",
					Excerpt: "Mark your calendars for the biggest literary gathering of the year in Guwahati.",
					Content: "<p>Details about the speakers and venues for the upcoming festival.</p>",
				},
				"bn": {
					Title:   "বিষ্ণুপ্রিয়া সাহিত্য উৎসব ২০২৫-এর সময়সূচী প্রকাশিত",
					Excerpt: "গুয়াহাটিতে বছরের সবচেয়ে বড় সাহিত্যিক সমাবেশের জন্য ক্যালেন্ডার চিহ্নিত করুন।",
					Content: "<p>আসন্ন উৎসবের বক্তা এবং ভেন্যু সম্পর্কে বিস্তারিত।</p>",
				},
				"hi": {
					Title:   "विष्णुप्रिया साहित्य महोत्सव 2025 का शेड्यूल जारी",
					Excerpt: "गुवाहाटी में वर्ष के सबसे बड़े साहित्यिक समागम के लिए अपना कैलेंडर मार्क करें।",
					Content: "<p>आगामी महोत्सव के वक्ताओं और स्थानों के बारे में विवरण।</p>",
				},
			},
		},
		{
			ID:       "2",
			Category: "Culture",
			Author:   "Rina Sinha",
			Date:     "Oct 22, 2025",
			Image:    "https://images.unsplash.com/photo-1528605248644-14dd04022da1?auto=format&fit=crop&q=80&w=800",
			Translations: map[string]model.Translation{
				"en": {
					Title:   "Traditional Weaving Techniques Revived by Youth Groups",
					Excerpt: "Young artisans are bringing back ancient patterns to modern fashion shows.",
					Content: "<p>Exploring how tradition meets modern trends in the textile world.</p>",
				},
				"bn": {
					Title:   "যুব গোষ্ঠীর উদ্যোগে ঐতিহ্যবাহী বয়ন কৌশলের পুনরুজ্জীবন",
					Excerpt: "তরুণ কারিগররা আধুনিক ফ্যাশন শো-তে প্রাচীন নকশা ফিরিয়ে আনছেন।",
					Content: "<p>কীভাবে ঐতিহ্য এবং আধুনিক ট্রেন্ডের মেলবন্ধন ঘটছে তা নিয়ে বিস্তারিত।</p>",
				},
				"hi": {
					Title:   "युवा समूहों द्वारा पारंपरिक बुनाई तकनीकों का पुनरुद्धार",
					Excerpt: "युवा कारीगर आधुनिक फैशन शो में प्राचीन पैटर्न वापस ला रहे हैं।",
					Content: "<p>कपड़ा जगत में परंपरा और आधुनिक रुझानों के मिलन की पड़ताल।</p>",
				},
			},
		},
	}
}
